package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/tendant/simple-drop/pkg/simpledrop"
	fsstorage "github.com/tendant/simple-drop/pkg/simpledrop/storage/fs"
	memorystorage "github.com/tendant/simple-drop/pkg/simpledrop/storage/memory"
	s3storage "github.com/tendant/simple-drop/pkg/simpledrop/storage/s3"
)

type Config struct {
	Port           string `env:"PORT" env-default:"8080"`
	ApiKey         string `env:"API_KEY"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" env-default:"0"`
	Storage        StorageConfig
	S3             S3Config
	Sweep          SweepConfig
}

type StorageConfig struct {
	Type      string `env:"STORAGE_TYPE" env-default:"s3"`
	FsBaseDir string `env:"FS_BASE_DIR" env-default:"./data"`
}

type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	BucketName      string `env:"AWS_S3_BUCKET" env-default:""`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

type SweepConfig struct {
	Interval time.Duration `env:"SWEEP_INTERVAL" env-default:"24h"`
	MaxAge   time.Duration `env:"RETENTION_MAX_AGE" env-default:"720h"`
}

// Validate fails fast on configuration the process cannot run without.
func (c Config) Validate() error {
	if c.ApiKey == "" {
		return errors.New("API_KEY is required")
	}

	switch c.Storage.Type {
	case "s3":
		if c.S3.BucketName == "" {
			return errors.New("AWS_S3_BUCKET is required for s3 storage")
		}
	case "fs":
		if c.Storage.FsBaseDir == "" {
			return errors.New("FS_BASE_DIR is required for fs storage")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %q (use 's3', 'fs', or 'memory')", c.Storage.Type)
	}

	if c.Sweep.Interval <= 0 {
		return errors.New("SWEEP_INTERVAL must be positive")
	}
	if c.Sweep.MaxAge <= 0 {
		return errors.New("RETENTION_MAX_AGE must be positive")
	}

	return nil
}

// NewBlobStore builds the configured storage backend.
func NewBlobStore(c Config) (simpledrop.BlobStore, error) {
	switch c.Storage.Type {
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.BucketName,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
	case "fs":
		return fsstorage.New(fsstorage.Config{BaseDir: c.Storage.FsBaseDir})
	case "memory":
		return memorystorage.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %q", c.Storage.Type)
	}
}
