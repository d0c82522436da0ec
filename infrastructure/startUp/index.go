package startup

import (
	"blinkgate.io/application/liveness"
	"blinkgate.io/infrastructure/database"
	"blinkgate.io/infrastructure/database/connection/datastore"
	fileupload "blinkgate.io/infrastructure/file_upload"
	"blinkgate.io/infrastructure/ipresolver"
	"blinkgate.io/infrastructure/logger"
	"blinkgate.io/infrastructure/vision"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	logger.RequestMetricMonitor.Init()
	fileupload.InitialiseFileUploader()
	vision.InitialiseVisionService()
	ipresolver.InitialiseIPResolver()
	liveness.InitialiseEngine()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
