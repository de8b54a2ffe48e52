package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AssignmentNotifier define o contrato para avisar o agente que
// recebeu um lead (email, futuramente WhatsApp)
type AssignmentNotifier interface {
	SendLeadAssigned(to, agentName, leadName string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier AssignmentNotifier
}

func NewWorker(ch *amqp.Channel, notifier AssignmentNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar %s: %s", payload.Event, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(payload LeadEventPayload) error {
	switch payload.Event {
	case EventLeadAssigned:
		if payload.SalesAgentEmail == "" {
			return nil
		}
		log.Printf("📧 [WORKER] Notificando %s sobre o lead %s", payload.SalesAgentName, payload.LeadName)
		return w.Notifier.SendLeadAssigned(payload.SalesAgentEmail, payload.SalesAgentName, payload.LeadName)

	case EventLeadCreated, EventLeadDeleted:
		// Por enquanto só auditoria via log
		log.Printf("📥 [WORKER] %s: lead %s (%s)", payload.Event, payload.LeadName, payload.LeadID)
		return nil

	default:
		log.Printf("⚠️ Evento desconhecido: %s. Apenas logando.", payload.Event)
		return nil
	}
}
