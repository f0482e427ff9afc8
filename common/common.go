package common

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	// ProjectID is the Google Cloud project that owns the warehouse datasets.
	ProjectID string

	// Dataset is the BigQuery dataset holding the store export tables.
	Dataset string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "truegloryhair"

	defaultDataset = "tgh1"
)

func initEnvVariables() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("common: could not load .env file: %s", err)
	}

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", productionProject)
	Dataset = GetEnv("BQ_DATASET", defaultDataset)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "commerce-reports")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	switch {
	case ProjectID == productionProject && !IsLocalhost:
		Env = "production"
		Production = true
	default:
		Env = "development"
		Production = false
	}
}

func init() {
	initEnvVariables()
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// GetEnvInt returns the integer value of the environment variable, or the fallback
// when the variable is not set. A value that is set but not an integer is an error.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

// GetEnvFloat is the float64 counterpart of GetEnvInt.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

// TableID returns the fully qualified BigQuery table name for a table in the store dataset.
func TableID(table string) string {
	return "`" + ProjectID + "." + Dataset + "." + table + "`"
}
