package configs

// Configurable is implemented by typed settings.
// ConfigExpr names the setting as written in config files.
type Configurable interface {
	ConfigExpr() string
}
