package register

import "sync"

type funcRegister struct {
	handlers map[any][]any
	locker   sync.Mutex
}

var fr = &funcRegister{
	handlers: make(map[any][]any),
}

type Handler[T any] func(T)

// RegisterFunc queues a typed setup handler under key, resolved later by
// the owner of that key. Used by the sqlstore provider so each store file
// can wire itself from its init func.
func RegisterFunc[T any](key any, handler Handler[T]) {
	fr.locker.Lock()
	fr.handlers[key] = append(fr.handlers[key], handler)
	fr.locker.Unlock()
}

func ResolveFuncHandlers[T any](key any) []Handler[T] {
	fr.locker.Lock()
	defer fr.locker.Unlock()

	var result []Handler[T]
	for _, v := range fr.handlers[key] {
		if h, ok := v.(Handler[T]); ok {
			result = append(result, h)
		}
	}
	return result
}
