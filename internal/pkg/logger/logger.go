package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository, Worker) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry define a estrutura de um log para garantir o formato JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// levels ordena os níveis aceitos em LOG_LEVEL.
var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// JSONLogger escreve uma entrada JSON por linha no writer configurado.
type JSONLogger struct {
	minLevel int
	out      *log.Logger
	exit     func(int)
}

// NewLogger cria um Logger que escreve em stdout.
// Esta função é chamada nos binários em cmd/.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter permite redirecionar a saída (usado nos testes).
func NewLoggerWithWriter(level string, w io.Writer) *JSONLogger {
	min, ok := levels[strings.ToLower(level)]
	if !ok {
		min = levels["info"]
	}
	return &JSONLogger{
		minLevel: min,
		out:      log.New(w, "", 0),
		exit:     os.Exit,
	}
}

// NewNopLogger descarta todas as entradas abaixo de fatal.
func NewNopLogger() Logger {
	return NewLoggerWithWriter("fatal", io.Discard)
}

func (l *JSONLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[level] < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     strings.ToUpper(level),
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Campos não serializáveis: registramos a mensagem sem eles.
		entry.Fields = nil
		jsonBytes, _ = json.Marshal(entry)
	}
	l.out.Println(string(jsonBytes))

	if level == "fatal" {
		l.exit(1)
	}
}

func (l *JSONLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *JSONLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *JSONLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *JSONLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

func (l *JSONLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
}
