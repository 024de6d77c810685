package realtime

import "sync"

type Callback func(change Change)

type Publisher interface {
	Publish(change Change)
}

type Subscriber interface {
	Subscribe(collection string, callback Callback) (unsubscribe func())
}

// Broker fans changes out to the callbacks registered for their collection.
// Callbacks run on the publisher's goroutine and must not block.
type Broker struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers map[string]map[uint64]Callback
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string]map[uint64]Callback),
	}
}

func (b *Broker) Subscribe(collection string, callback Callback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	if b.subscribers[collection] == nil {
		b.subscribers[collection] = make(map[uint64]Callback)
	}
	b.subscribers[collection][id] = callback

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subscribers[collection], id)
			if len(b.subscribers[collection]) == 0 {
				delete(b.subscribers, collection)
			}
		})
	}
}

func (b *Broker) Publish(change Change) {
	b.mu.RLock()
	callbacks := make([]Callback, 0, len(b.subscribers[change.Collection]))
	for _, callback := range b.subscribers[change.Collection] {
		callbacks = append(callbacks, callback)
	}
	b.mu.RUnlock()

	for _, callback := range callbacks {
		callback(change)
	}
}

// SubscribeMany registers callback on several collections at once.
func SubscribeMany(subscriber Subscriber, collections []string, callback Callback) func() {
	unsubscribes := make([]func(), 0, len(collections))
	for _, collection := range collections {
		unsubscribes = append(unsubscribes, subscriber.Subscribe(collection, callback))
	}

	return func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
}
