// Package rabbitmq RabbitMQ 백엔드에 대한 요청 단위의 메시지 발행을 제공합니다.
//
// 연결을 재사용하지 않고 매 발행마다 접속을 열고 닫습니다. 접속 수립에
// 실패하면 Unavailable, 접속 후의 채널 생성/큐 선언/발행 실패는
// ExecutionFailed 타입의 에러로 분류됩니다.
package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/darkkaiser/homelab-api-server/internal/config"
	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

// Connector RabbitMQ 접속 정보를 보관하며 요청 단위의 연결을 생성합니다.
type Connector struct {
	cfg config.RabbitMQConfig
}

// NewConnector Connector 인스턴스를 생성합니다.
func NewConnector(cfg config.RabbitMQConfig) *Connector {
	return &Connector{cfg: cfg}
}

// uri 접속 정보를 AMQP URI 문자열로 변환합니다.
// 가상 호스트("/" 등)의 이스케이프 처리는 amqp.URI에 위임합니다.
func (c *Connector) uri() string {
	u := amqp.URI{
		Scheme:   "amqp",
		Host:     c.cfg.Host,
		Port:     c.cfg.Port,
		Username: c.cfg.User,
		Password: c.cfg.Password,
		Vhost:    c.cfg.VHost,
	}
	return u.String()
}

// dial 브로커에 접속합니다.
// 실패 시 Unavailable 타입의 에러를 반환하며, 호출자는 이를 503 응답으로 변환해야 합니다.
func (c *Connector) dial() (*amqp.Connection, error) {
	conn, err := amqp.Dial(c.uri())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "RabbitMQ에 연결할 수 없습니다")
	}
	return conn, nil
}

// Probe 접속 후 즉시 연결을 닫는 왕복으로 백엔드 연결 상태를 확인합니다.
func (c *Connector) Probe(_ context.Context) error {
	conn, err := c.dial()
	if err != nil {
		return err
	}

	if err := conn.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "RabbitMQ 연결 종료에 실패했습니다")
	}

	return nil
}

// Publish 지정된 큐에 JSON 메시지를 발행합니다.
//
// 큐는 존재하지 않으면 durable로 선언되며(멱등), 메시지는 Persistent 모드로
// 발행되어 브로커 재시작 후에도 유실되지 않습니다. 발행 완료 확인(Confirm)은
// 기다리지 않습니다.
func (c *Connector) Publish(ctx context.Context, queue string, body []byte) error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "RabbitMQ 채널 생성에 실패했습니다")
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "큐 선언에 실패했습니다: '%s'", queue)
	}

	if err := ch.PublishWithContext(ctx,
		"",    // exchange (기본 익스체인지, 큐 이름으로 직접 라우팅)
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	); err != nil {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "메시지 발행에 실패했습니다: '%s'", queue)
	}

	return nil
}
