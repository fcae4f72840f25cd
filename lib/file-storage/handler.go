package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"connect-skills-backend/config"
	"connect-skills-backend/db"
	filestore "connect-skills-backend/lib/file-storage/store"
	dbmodels "connect-skills-backend/models/db"
	s3client "connect-skills-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error
	UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error
	UploadAnswerVideo(ctx context.Context, candidateID, vacancyID string, file []byte, fileName, contentType string) error
	UploadLogo(ctx context.Context, companyID string, file []byte, fileName, contentType string) error
	GetFile(ctx context.Context, fileID string) (data []byte, contentType string, err error)
	GetCandidatePhoto(ctx context.Context, candidateID string) (fileName string, data []byte, err error)
	RemoveObjects(ctx context.Context, fileIDs []string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		fileStore: filestore.NewInstance(db.DB),
	}
}

type impl struct {
	fileStore filestore.Provider
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error {
	info := dbmodels.UploadFileInfo{
		CandidateID: candidateID,
		FileName:    fileName,
		FileType:    dbmodels.CandidateResume,
		ContentType: contentType,
	}
	return i.upload(ctx, info, file)
}

func (i impl) UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error {
	info := dbmodels.UploadFileInfo{
		CandidateID: candidateID,
		FileName:    fileName,
		FileType:    dbmodels.CandidatePhoto,
		ContentType: contentType,
	}
	return i.upload(ctx, info, file)
}

func (i impl) UploadAnswerVideo(ctx context.Context, candidateID, vacancyID string, file []byte, fileName, contentType string) error {
	info := dbmodels.UploadFileInfo{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		FileName:    fileName,
		FileType:    dbmodels.CandidateAnswerVideo,
		ContentType: contentType,
	}
	return i.upload(ctx, info, file)
}

func (i impl) UploadLogo(ctx context.Context, companyID string, file []byte, fileName, contentType string) error {
	info := dbmodels.UploadFileInfo{
		CompanyID:   companyID,
		FileName:    fileName,
		FileType:    dbmodels.CompanyLogo,
		ContentType: contentType,
	}
	return i.upload(ctx, info, file)
}

// upload keeps one object per (owner, type), a re-upload replaces the old
// object and reuses its record.
func (i impl) upload(ctx context.Context, info dbmodels.UploadFileInfo, file []byte) error {
	rec, err := i.fileStore.Find(info)
	if err != nil {
		return errors.Wrap(err, "failed to look up file record")
	}
	if rec == nil {
		rec = &dbmodels.FileStorage{
			BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
			Name:        info.FileName,
			CandidateID: info.CandidateID,
			CompanyID:   info.CompanyID,
			VacancyID:   info.VacancyID,
			Type:        info.FileType,
			ContentType: info.ContentType,
		}
		if _, err = i.fileStore.Create(*rec); err != nil {
			return errors.Wrap(err, "failed to save file record")
		}
	}
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey(rec.ID), bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: info.ContentType})
	if err != nil {
		return errors.Wrap(err, "failed to upload object")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, string, error) {
	rec, err := i.fileStore.GetByID(fileID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("file not found")
	}
	obj, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectKey(rec.ID), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get object")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read object")
	}
	return data, rec.ContentType, nil
}

// GetCandidatePhoto returns an empty body when no photo was uploaded.
func (i impl) GetCandidatePhoto(ctx context.Context, candidateID string) (string, []byte, error) {
	rec, err := i.fileStore.Find(dbmodels.UploadFileInfo{
		CandidateID: candidateID,
		FileType:    dbmodels.CandidatePhoto,
	})
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, nil
	}
	data, _, err := i.GetFile(ctx, rec.ID)
	if err != nil {
		return "", nil, err
	}
	return rec.Name, data, nil
}

// RemoveObjects is best-effort cleanup after account deletion, the DB rows
// are already gone at this point and object storage has no rollback.
func (i impl) RemoveObjects(ctx context.Context, fileIDs []string) {
	for _, fileID := range fileIDs {
		err := s3client.Client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey(fileID), minio.RemoveObjectOptions{})
		if err != nil {
			log.WithError(err).WithField("file_id", fileID).Warn("failed to remove object")
		}
	}
}

func objectKey(fileID string) string {
	return fmt.Sprintf("files/%s", fileID)
}
