package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"recicleme/internal/domain"
	"recicleme/internal/pkg/logger"
)

// Tipos de tarefas em background.
const (
	TypeColetaConcluida = "coleta:concluida"
)

// TaskEnqueuer é o subconjunto do *asynq.Client usado pela API.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewClient cria o cliente asynq que publica tarefas no Redis.
func NewClient(redisAddr string) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
}

// NewColetaConcluidaTask serializa o evento de conclusão em uma tarefa.
func NewColetaConcluidaTask(evt domain.ColetaConcluidaEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar payload da tarefa %s: %w", TypeColetaConcluida, err)
	}
	return asynq.NewTask(TypeColetaConcluida, payload), nil
}

// Notifier publica eventos de domínio na fila.
type Notifier struct {
	client TaskEnqueuer
	queue  string
	logger logger.Logger
}

// NewNotifier cria o publicador de notificações.
func NewNotifier(client TaskEnqueuer, queue string, logger logger.Logger) *Notifier {
	if queue == "" {
		queue = "default"
	}
	return &Notifier{client: client, queue: queue, logger: logger}
}

// NotifyColetaConcluida enfileira a notificação de pontos ganhos.
func (n *Notifier) NotifyColetaConcluida(ctx context.Context, evt domain.ColetaConcluidaEvent) error {
	task, err := NewColetaConcluidaTask(evt)
	if err != nil {
		return err
	}

	info, err := n.client.EnqueueContext(ctx, task, asynq.Queue(n.queue), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("falha ao enfileirar tarefa %s: %w", TypeColetaConcluida, err)
	}

	n.logger.Info("Notificação de coleta concluída enfileirada", map[string]interface{}{
		"task_id":   info.ID,
		"coleta_id": evt.ColetaID,
		"user_id":   evt.UserID,
	})
	return nil
}

// --- Processamento (worker) ---

// TaskProcessor concentra os handlers das tarefas consumidas pelo worker.
type TaskProcessor struct {
	logger logger.Logger
}

// NewTaskProcessor cria o processador de tarefas.
func NewTaskProcessor(logger logger.Logger) *TaskProcessor {
	return &TaskProcessor{logger: logger}
}

// HandleColetaConcluidaTask registra a notificação de pontos creditados ao usuário.
func (p *TaskProcessor) HandleColetaConcluidaTask(ctx context.Context, t *asynq.Task) error {
	var evt domain.ColetaConcluidaEvent
	if err := json.Unmarshal(t.Payload(), &evt); err != nil {
		return fmt.Errorf("payload inválido para %s: %v: %w", TypeColetaConcluida, err, asynq.SkipRetry)
	}
	if evt.ColetaID == "" || evt.UserID == "" {
		return fmt.Errorf("payload incompleto para %s: %w", TypeColetaConcluida, asynq.SkipRetry)
	}

	p.logger.Info(fmt.Sprintf("Parabéns! Você ganhou %d pontos com a sua coleta.", evt.Pontos), map[string]interface{}{
		"tipo":      TypeColetaConcluida,
		"coleta_id": evt.ColetaID,
		"user_id":   evt.UserID,
		"pontos":    evt.Pontos,
	})
	return nil
}

// NewServeMux registra os handlers de cada tipo de tarefa.
func NewServeMux(p *TaskProcessor) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeColetaConcluida, p.HandleColetaConcluidaTask)
	return mux
}

// NewServer configura o servidor asynq do worker.
func NewServer(redisAddr, queue string, concurrency int, log logger.Logger) *asynq.Server {
	if queue == "" {
		queue = "default"
	}
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: concurrency,
			Queues:      map[string]int{queue: 1},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error(fmt.Sprintf("Falha ao processar tarefa %s", task.Type()), err)
			}),
		},
	)
}
