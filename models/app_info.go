package models

// AppInfo describes the running deployment on GET /api/info.
type AppInfo struct {
	Version   string `json:"version"`
	ProjectID string `json:"projectId"`
	DataStore string `json:"dataStore"`
	FileStore string `json:"fileStore"`
}
