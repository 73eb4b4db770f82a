package models

import "encoding/json"

// ServiceStatus is the root response of the gateway service.
type ServiceStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// PingResponse is the body returned by the ping service on /ping.
type PingResponse struct {
	Service string `json:"service"`
	Message string `json:"message"`
}

// PeerCheck reports the outcome of a call from one lab service to another.
type PeerCheck struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Status int    `json:"status"`

	// Response is the peer's JSON body exactly as it was received, whatever
	// its shape.
	Response json.RawMessage `json:"response"`
}

// DBCheck reports the server version of a probed database.
type DBCheck struct {
	Status    string `json:"status"`
	DBVersion string `json:"db_version"`
}

// DBStatus reports the result of a trivial query against the database.
type DBStatus struct {
	DBStatus int `json:"db_status"`
}

// Message is a generic single-message response.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
