package dto

// SistemaStatusResponse respuesta de GET /api/system/status.
type SistemaStatusResponse struct {
	Sistema          string `json:"sistema"`
	Version          string `json:"version"`
	Storage          string `json:"storage"` // "mongodb" | "memoria"
	MongoDBConnected bool   `json:"mongodb_connected"`
	UptimeSegundos   int64  `json:"uptime_segundos"`
}
