package coletaservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// ColetaRepository define o contrato de persistência das coletas.
type ColetaRepository interface {
	Save(ctx context.Context, c domain.Coleta) (domain.Coleta, error)
	FindByID(ctx context.Context, userID, id string) (domain.Coleta, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Coleta, error)
	Complete(ctx context.Context, userID, id string, pontos int64) (domain.Coleta, error)
	Delete(ctx context.Context, userID, id string) error
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// FlagReader fornece as feature flags atuais.
type FlagReader interface {
	Flags(ctx context.Context) (domain.FeatureFlags, error)
}

// Notifier publica a conclusão de uma coleta.
type Notifier interface {
	NotifyColetaConcluida(ctx context.Context, evt domain.ColetaConcluidaEvent) error
}

// PhotoStorage gera URLs de upload para as fotos.
type PhotoStorage interface {
	PresignPhotoUpload(ctx context.Context, userID, filename, contentType string) (domain.FotoUpload, error)
}

// Service implementa o ciclo de vida das coletas: pendente -> concluído, ou removida.
// Os pontos gravados são calculados somente na conclusão.
type Service struct {
	repo     ColetaRepository
	flags    FlagReader
	notifier Notifier
	storage  PhotoStorage
	logger   logger.Logger
	now      func() time.Time
}

// NewService cria o serviço de coletas. notifier e storage podem ser nil.
func NewService(repo ColetaRepository, flags FlagReader, notifier Notifier, storage PhotoStorage, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		flags:    flags,
		notifier: notifier,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
	}
}

// PontosColeta devolve o catálogo de pontos de coleta.
func (s *Service) PontosColeta() []domain.PontoColeta {
	return domain.PontosColeta()
}

// Estimate calcula a estimativa provisória de pontos sem persistir nada.
func (s *Service) Estimate(req domain.EstimativaRequest) (domain.Estimativa, error) {
	if req.TipoResiduo == "" {
		return domain.Estimativa{}, apperror.NewValidationError("O tipo de resíduo é obrigatório.")
	}
	if err := validateQuantidade(req.Quantidade); err != nil {
		return domain.Estimativa{}, err
	}
	return domain.Estimativa{
		TipoResiduo:      req.TipoResiduo,
		PontosPorUnidade: domain.PontosPorUnidade(req.TipoResiduo),
		PontosEstimados:  domain.CalculatePoints(req.TipoResiduo, req.Quantidade),
	}, nil
}

// Schedule agenda uma coleta pendente com zero pontos e devolve a estimativa provisória.
func (s *Service) Schedule(ctx context.Context, userID string, req domain.ColetaRequest) (domain.ColetaAgendada, error) {
	s.logger.Debug("Iniciando agendamento de coleta.", map[string]interface{}{"user_id": userID, "ponto_id": req.PontoID})

	ponto, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("Falha na validação da coleta.", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return domain.ColetaAgendada{}, err
	}

	flags, err := s.flags.Flags(ctx)
	if err != nil {
		return domain.ColetaAgendada{}, err
	}
	if !flags.ColetasEnabled {
		return domain.ColetaAgendada{}, apperror.NewUnavailableError("O agendamento de coletas está desabilitado no momento.")
	}

	now := s.now()
	today, err := s.repo.CountCreatedSince(ctx, userID, startOfDay(now))
	if err != nil {
		return domain.ColetaAgendada{}, err
	}
	if today >= flags.MaxColetasPerDay {
		return domain.ColetaAgendada{}, apperror.NewConflictError(
			fmt.Sprintf("Limite diário de %d coletas atingido.", flags.MaxColetasPerDay))
	}

	dataColeta := now
	if req.DataColeta != nil && !req.DataColeta.IsZero() {
		dataColeta = *req.DataColeta
	}

	saved, err := s.repo.Save(ctx, domain.Coleta{
		UserID:       userID,
		TipoResiduo:  req.TipoResiduo,
		Quantidade:   req.Quantidade,
		Unidade:      req.Unidade,
		PontoColeta:  ponto.Nome,
		Endereco:     ponto.Endereco,
		DataColeta:   dataColeta,
		Status:       domain.StatusPendente,
		PontosGanhos: 0,
		FotoURL:      strings.TrimSpace(req.FotoURL),
	})
	if err != nil {
		return domain.ColetaAgendada{}, err
	}

	s.logger.Info("Coleta agendada.", map[string]interface{}{"coleta_id": saved.ID, "user_id": userID})
	return domain.ColetaAgendada{
		Coleta:          saved,
		PontosEstimados: domain.CalculatePoints(saved.TipoResiduo, saved.Quantidade),
	}, nil
}

// Complete conclui uma coleta pendente do usuário e grava os pontos calculados a
// partir da categoria e quantidade armazenadas.
func (s *Service) Complete(ctx context.Context, userID, id string) (domain.Coleta, error) {
	if err := validateID(id); err != nil {
		return domain.Coleta{}, err
	}

	current, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return domain.Coleta{}, err
	}
	if current.Status == domain.StatusConcluido {
		return domain.Coleta{}, apperror.NewConflictError(fmt.Sprintf("A coleta '%s' já foi concluída.", id))
	}

	pontos := domain.CalculatePoints(current.TipoResiduo, current.Quantidade)
	done, err := s.repo.Complete(ctx, userID, id, pontos)
	if err != nil {
		return domain.Coleta{}, err
	}

	s.notify(ctx, done)
	return done, nil
}

// notify enfileira a notificação quando habilitada. Falhas não desfazem a conclusão.
func (s *Service) notify(ctx context.Context, c domain.Coleta) {
	if s.notifier == nil {
		return
	}
	flags, err := s.flags.Flags(ctx)
	if err != nil || !flags.NotificationsEnabled {
		return
	}
	evt := domain.ColetaConcluidaEvent{ColetaID: c.ID, UserID: c.UserID, Pontos: c.PontosGanhos}
	if err := s.notifier.NotifyColetaConcluida(ctx, evt); err != nil {
		s.logger.Error("Falha ao enfileirar notificação de coleta concluída.", err)
	}
}

// Cancel remove a coleta do usuário.
func (s *Service) Cancel(ctx context.Context, userID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("Coleta cancelada.", map[string]interface{}{"coleta_id": id, "user_id": userID})
	return nil
}

// List devolve as coletas do usuário, mais recentes primeiro.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Coleta, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get devolve uma coleta do usuário.
func (s *Service) Get(ctx context.Context, userID, id string) (domain.Coleta, error) {
	if err := validateID(id); err != nil {
		return domain.Coleta{}, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

// PresignFoto gera a URL de upload da foto de uma coleta.
func (s *Service) PresignFoto(ctx context.Context, userID string, req domain.FotoUploadRequest) (domain.FotoUpload, error) {
	if s.storage == nil {
		return domain.FotoUpload{}, apperror.NewUnavailableError("O armazenamento de fotos não está configurado.")
	}
	if strings.TrimSpace(req.Filename) == "" {
		return domain.FotoUpload{}, apperror.NewValidationError("O nome do arquivo é obrigatório.")
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return domain.FotoUpload{}, apperror.NewValidationError("Apenas imagens são aceitas.")
	}

	upload, err := s.storage.PresignPhotoUpload(ctx, userID, req.Filename, req.ContentType)
	if err != nil {
		return domain.FotoUpload{}, apperror.NewInternalError("Falha ao gerar URL de upload.", err)
	}
	return upload, nil
}

func validateRequest(req domain.ColetaRequest) (domain.PontoColeta, error) {
	if req.PontoID == 0 || req.TipoResiduo == "" || req.Unidade == "" {
		return domain.PontoColeta{}, apperror.NewValidationError("Preencha todos os campos.")
	}
	if err := validateQuantidade(req.Quantidade); err != nil {
		return domain.PontoColeta{}, err
	}
	if !req.Unidade.Valid() {
		return domain.PontoColeta{}, apperror.NewValidationError(fmt.Sprintf("Unidade '%s' inválida.", req.Unidade))
	}
	ponto, ok := domain.FindPontoColeta(req.PontoID)
	if !ok {
		return domain.PontoColeta{}, apperror.NewValidationError(fmt.Sprintf("Ponto de coleta %d inexistente.", req.PontoID))
	}
	if !ponto.Aceita(req.TipoResiduo) {
		return domain.PontoColeta{}, apperror.NewValidationError(
			fmt.Sprintf("O ponto '%s' não aceita %s.", ponto.Nome, req.TipoResiduo))
	}
	return ponto, nil
}

// validateQuantidade aplica os limites da coluna: positiva, até MaxQuantidade e
// com no máximo três casas decimais, para que o valor gravado seja o calculado.
func validateQuantidade(q decimal.Decimal) error {
	if !q.IsPositive() {
		return apperror.NewValidationError("A quantidade deve ser maior que zero.")
	}
	if q.GreaterThan(domain.MaxQuantidade) {
		return apperror.NewValidationError(fmt.Sprintf("A quantidade deve ser no máximo %s.", domain.MaxQuantidade.String()))
	}
	if !q.Equal(q.Truncate(domain.QuantidadeCasasDecimais)) {
		return apperror.NewValidationError(fmt.Sprintf("A quantidade aceita no máximo %d casas decimais.", domain.QuantidadeCasasDecimais))
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da coleta deve ser um UUID válido.")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
