package appconf

// Environment describes the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for our Application.
type Config struct {
	Port int
	Env  Environment
}

// EnvFlagToEnvironment maps the -env command line flag to an Environment value.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}
