package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"recicleme/config"
	"recicleme/internal/domain"
)

// presignExpiry é a validade da URL de upload.
const presignExpiry = 15 * time.Minute

// Presigner é o subconjunto do s3.PresignClient usado aqui.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
}

// PresignedRequest espelha os campos do v4.PresignedHTTPRequest que usamos.
type PresignedRequest struct {
	URL string
}

// s3Presigner adapta o *s3.PresignClient à interface Presigner.
type s3Presigner struct {
	client *s3.PresignClient
}

func (p s3Presigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	req, err := p.client.PresignPutObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

// S3Storage gera URLs de upload das fotos das coletas.
type S3Storage struct {
	bucket        string
	publicBaseURL string
	presigner     Presigner
	now           func() time.Time
}

// NewS3Storage cria o cliente S3 a partir da configuração.
func NewS3Storage(ctx context.Context, cfg *config.Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AwsRegion)}
	if cfg.AwsAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AwsS3Endpoint != "" {
			// MinIO e afins
			o.BaseEndpoint = aws.String(cfg.AwsS3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.AwsS3PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.AwsS3Bucket, cfg.AwsRegion)
	}

	return NewS3StorageWithPresigner(cfg.AwsS3Bucket, publicBase, s3Presigner{client: s3.NewPresignClient(client)}), nil
}

// NewS3StorageWithPresigner permite injetar o presigner (usado nos testes).
func NewS3StorageWithPresigner(bucket, publicBaseURL string, presigner Presigner) *S3Storage {
	return &S3Storage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		presigner:     presigner,
		now:           time.Now,
	}
}

// PresignPhotoUpload gera a URL de PUT para uma foto do usuário.
// A chave segue coletas/<userID>/<uuid>_<nome>.
func (s *S3Storage) PresignPhotoUpload(ctx context.Context, userID, filename, contentType string) (domain.FotoUpload, error) {
	objectKey := fmt.Sprintf("coletas/%s/%s_%s", userID, uuid.NewString(), sanitizeFilename(filename))

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return domain.FotoUpload{}, fmt.Errorf("falha ao gerar URL pré-assinada para %s: %w", objectKey, err)
	}

	return domain.FotoUpload{
		UploadURL: req.URL,
		FotoURL:   s.publicBaseURL + "/" + objectKey,
		Key:       objectKey,
		ExpiresAt: s.now().Add(presignExpiry).UTC(),
	}, nil
}

// sanitizeFilename remove diretórios e caracteres fora de [A-Za-z0-9._-].
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "foto"
	}
	return out
}
