package eventpubsub

import (
	"errors"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

var ErrBusNotInitialized = errors.New("eventpubsub: bus not initialized")

func Init() {
	bus = EventBus.New()
}

func Publish(topic string, event interface{}) {
	if bus == nil {
		log.Warnf("eventpubsub: dropping %s event, bus not initialized", topic)
		return
	}

	bus.Publish(topic, event)
}

// Subscribe registers an asynchronous, serialized handler. Use WaitAsync to
// drain pending callbacks.
func Subscribe(topic string, callbackFn interface{}) error {
	if bus == nil {
		return ErrBusNotInitialized
	}

	if err := bus.SubscribeAsync(topic, callbackFn, true); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

func SubscribeSync(topic string, callbackFn interface{}) error {
	if bus == nil {
		return ErrBusNotInitialized
	}

	if err := bus.Subscribe(topic, callbackFn); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", topic)
	return nil
}

func WaitAsync() {
	if bus != nil {
		bus.WaitAsync()
	}
}
