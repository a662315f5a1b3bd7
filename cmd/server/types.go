package main

import "time"

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// BackendEndpoint is the getTransactions hook of the automation
	// backend. Empty means fully offline operation on cached data.
	BackendEndpoint string `env:"BACKEND_ENDPOINT"`

	UserID string `env:"DASHBOARD_USER_ID" envDefault:"default"`

	AuthUsername string `env:"AUTH_USERNAME" envDefault:"oe-admin"`
	AuthPassword string `env:"AUTH_PASSWORD,required"`

	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING"`
	CosmosConnectionString   string `env:"COSMO_DB_CONNECTION_STRING"`
	CosmosDbName             string `env:"COSMO_DB_NAME" envDefault:"oebooks"`

	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"1h"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type refreshResponse struct {
	NewCount  int  `json:"newCount"`
	Total     int  `json:"total"`
	FromCache bool `json:"fromCache"`
}

type notificationsResponse struct {
	Notifications any `json:"notifications"`
	UnreadCount   int `json:"unreadCount"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Resync bool   `json:"resync,omitempty"`
}
