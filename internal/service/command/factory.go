package command

// ProviderInfo exposes the bits of provider configuration the
// commands report on.
type ProviderInfo interface {
	GetProvider() string
	GetModel() string
}

func NewRouter(cfg ProviderInfo) *Router {
	r := New([]Command{
		NewListCommand(),
		NewClearCommand(),
		NewModelCommand(cfg),
	})
	r.register(NewHelpCommand(r))
	return r
}
