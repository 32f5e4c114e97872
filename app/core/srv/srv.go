package srv

// Srv bundles the external service clients the logic layer depends on.
type Srv struct {
	ai *AI
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	s := &Srv{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Srv) AI() *AI {
	return s.ai
}
