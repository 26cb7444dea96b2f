package events

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("events: failed to publish message")
)
