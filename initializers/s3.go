package initializers

import (
	"context"

	s3client "connect-skills-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to init s3 client")
		return
	}
	s3client.Client = minioClient

	if err = s3client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("failed to prepare s3 bucket")
		return
	}
	log.Info("s3 client initialized")
}
