package reconcilers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	goerrors "errors"

	"github.com/IBM/sarama"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
)

const generatedPasswordBytes = 48

// UserStrategy carries the user operations a provider supports
type UserStrategy interface {
	CanSynchronizeQuotas() bool
	CanResetPassword() bool
	DescribeQuotas(ctx context.Context) (map[string]map[string]float64, error)
	AlterQuotas(ctx context.Context, user string, quotas map[string]float64) error
	ResetPassword(ctx context.Context, user string) (string, error)
	SetPassword(ctx context.Context, user string, password string) error
	CheckPassword(ctx context.Context, user string, password string) (bool, error)
}

// NewUserStrategy selects the strategy of the cluster provider
func NewUserStrategy(cluster *registry.ManagedCluster) UserStrategy {
	if cluster.Config().Provider == config.ProviderKindSelfManaged {
		return &scramUserStrategy{cluster: cluster}
	}
	return &unsupportedUserStrategy{cluster: cluster.Name(), provider: cluster.Config().Provider}
}

var _ UserStrategy = &scramUserStrategy{}

// scramUserStrategy manages SCRAM-SHA-512 credentials and client quotas through the admin protocol
type scramUserStrategy struct {
	cluster *registry.ManagedCluster
}

func (s *scramUserStrategy) CanSynchronizeQuotas() bool {
	return true
}

func (s *scramUserStrategy) CanResetPassword() bool {
	return true
}

func (s *scramUserStrategy) DescribeQuotas(ctx context.Context) (map[string]map[string]float64, error) {
	admin, err := s.cluster.Admin()
	if err != nil {
		return nil, err
	}
	return admin.DescribeUserQuotas(ctx)
}

func (s *scramUserStrategy) AlterQuotas(ctx context.Context, user string, quotas map[string]float64) error {
	admin, err := s.cluster.Admin()
	if err != nil {
		return err
	}
	return admin.AlterUserQuotas(ctx, user, quotas)
}

func (s *scramUserStrategy) ResetPassword(ctx context.Context, user string) (string, error) {
	password, err := generatePassword()
	if err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to generate a password for user %q", user)
	}
	if err := s.SetPassword(ctx, user, password); err != nil {
		return "", err
	}
	return password, nil
}

func (s *scramUserStrategy) SetPassword(ctx context.Context, user string, password string) error {
	admin, err := s.cluster.Admin()
	if err != nil {
		return err
	}
	return admin.UpsertScramCredential(ctx, user, password)
}

// CheckPassword authenticates with the candidate password. A broker refusing access to the offsets topic has
// authenticated the user first, so that refusal counts as a correct password.
func (s *scramUserStrategy) CheckPassword(ctx context.Context, user string, password string) (bool, error) {
	admin, err := s.cluster.Admin()
	if err != nil {
		return false, err
	}
	err = admin.CheckCredentials(ctx, user, password)
	switch {
	case err == nil:
		return true, nil
	case goerrors.Is(err, sarama.ErrTopicAuthorizationFailed):
		return true, nil
	default:
		logger.NewUHCLogger(ctx).V(5).Infof("password check of user %q failed: %v", user, err)
		return false, nil
	}
}

func generatePassword() (string, error) {
	buf := make([]byte, generatedPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

var _ UserStrategy = &unsupportedUserStrategy{}

type unsupportedUserStrategy struct {
	cluster  string
	provider config.ProviderKind
}

func (s *unsupportedUserStrategy) unsupported(operation string) error {
	return errors.UnsupportedOperation("%s is not supported on cluster %q of provider %s", operation, s.cluster, s.provider)
}

func (s *unsupportedUserStrategy) CanSynchronizeQuotas() bool {
	return false
}

func (s *unsupportedUserStrategy) CanResetPassword() bool {
	return false
}

func (s *unsupportedUserStrategy) DescribeQuotas(ctx context.Context) (map[string]map[string]float64, error) {
	return nil, s.unsupported("describing quotas")
}

func (s *unsupportedUserStrategy) AlterQuotas(ctx context.Context, user string, quotas map[string]float64) error {
	return s.unsupported("altering quotas")
}

func (s *unsupportedUserStrategy) ResetPassword(ctx context.Context, user string) (string, error) {
	return "", s.unsupported("resetting passwords")
}

func (s *unsupportedUserStrategy) SetPassword(ctx context.Context, user string, password string) error {
	return s.unsupported("setting passwords")
}

func (s *unsupportedUserStrategy) CheckPassword(ctx context.Context, user string, password string) (bool, error) {
	return false, s.unsupported("checking passwords")
}
