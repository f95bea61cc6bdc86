package config

import "os"

func IsDebug() bool {
	return os.Getenv("JOT_DEBUG") == "1"
}
