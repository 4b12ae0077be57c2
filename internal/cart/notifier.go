package cart

import "github.com/google/uuid"

// Snapshot is what subscribers receive after every applied cart change.
type Snapshot struct {
	Lines  []Line
	Totals Totals
}

// Listener receives cart snapshots. Listeners run synchronously on the
// mutating goroutine, in subscription order.
type Listener func(Snapshot)

// notifier is the explicit state-changed contract between the cart and its
// presentation layer, replacing framework-driven implicit re-renders.
type notifier struct {
	listeners map[string]Listener
	order     []string
}

func newNotifier() *notifier {
	return &notifier{listeners: make(map[string]Listener)}
}

func (n *notifier) subscribe(fn Listener) string {
	token := uuid.NewString()
	n.listeners[token] = fn
	n.order = append(n.order, token)
	return token
}

func (n *notifier) unsubscribe(token string) {
	if _, ok := n.listeners[token]; !ok {
		return
	}
	delete(n.listeners, token)

	for i, t := range n.order {
		if t == token {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

func (n *notifier) notify(snap Snapshot) {
	for _, token := range n.order {
		n.listeners[token](snap)
	}
}
