package interfaces

type ConsumerHandler interface {
	HandleMessage(message []byte) error
}

type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
