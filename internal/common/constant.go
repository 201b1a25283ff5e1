package common

// Persistence store keys. Values are JSON documents.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyOrders      = "orders"
)
