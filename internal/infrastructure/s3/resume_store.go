package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

var _ applications.ResumeStore = (*ResumeStore)(nil)

// ResumeStore guarda los CV en S3 (o un servicio compatible, ej. MinIO).
// Las credenciales las resuelve la cadena por defecto del SDK (env, perfil, rol).
type ResumeStore struct {
	uploader *manager.Uploader
	bucket   string
}

// NewResumeStore construye el cliente S3 desde la configuración de la app.
func NewResumeStore(ctx context.Context, cfg config.S3Config) (*ResumeStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket requerido")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // MinIO y similares no soportan virtual-host style
		}
	})
	return &ResumeStore{
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
	}, nil
}

// Upload sube el CV bajo la key indicada y la devuelve tal cual quedó almacenada.
// Los objetos quedan privados; el acceso de lectura es responsabilidad de quien consulte.
func (s *ResumeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
		ACL:    types.ObjectCannedACLPrivate,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}
