package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"myhealth/rehab-api/internal/config"
)

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{"explicit", config.S3Config{PublicBaseURL: "https://cdn.example.com/", BucketName: "b"}, "https://cdn.example.com"},
		{"endpoint", config.S3Config{Endpoint: "http://localhost:9000/", BucketName: "rehab"}, "http://localhost:9000/rehab"},
		{"aws", config.S3Config{Region: "eu-west-1", BucketName: "rehab"}, "https://rehab.s3.eu-west-1.amazonaws.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestObjectURL(t *testing.T) {
	s := &s3Storage{publicBaseURL: "http://localhost:9000/rehab"}
	assert.Equal(t, "http://localhost:9000/rehab/avatars/1/a.png", s.ObjectURL("/avatars/1/a.png"))
}
