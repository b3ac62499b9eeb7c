package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	AuthIssuer       string
	AuthAudience     string
	AuthPublicKeyPEM string
	PageSize         int
	AuditSchedule    string
}
