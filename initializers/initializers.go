package initializers

import (
	"context"

	"connect-skills-backend/config"
	"connect-skills-backend/fiberlog"
	accounthandler "connect-skills-backend/lib/account"
	authhandler "connect-skills-backend/lib/auth"
	candidatehandler "connect-skills-backend/lib/candidate"
	companyhandler "connect-skills-backend/lib/company"
	evaluationhandler "connect-skills-backend/lib/evaluation"
	xlsexport "connect-skills-backend/lib/export/xls"
	favoritehandler "connect-skills-backend/lib/favorite"
	filestorage "connect-skills-backend/lib/file-storage"
	notificationhandler "connect-skills-backend/lib/notification"
	vacancyhandler "connect-skills-backend/lib/vacancy"
	connectionhub "connect-skills-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	accounthandler.NewHandler()
	candidatehandler.NewHandler()
	companyhandler.NewHandler()
	vacancyhandler.NewHandler()
	evaluationhandler.NewHandler()
	favoritehandler.NewHandler()
	notificationhandler.NewHandler()
}
