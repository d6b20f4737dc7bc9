package env

import "os"

// Source supplies raw environment values.
type Source interface {
	LookupEnv(key string) (string, bool)
}

// Map is a Source backed by a plain map, mostly useful in tests.
type Map map[string]string

func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// OS returns a Source reading the process environment.
func OS() Source {
	return osSource{}
}

// allowList exposes only the listed keys of src. Every other key reads as unset.
type allowList struct {
	src  Source
	keys map[string]struct{}
}

func newAllowList(src Source, keys []string) allowList {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return allowList{src: src, keys: set}
}

func (a allowList) LookupEnv(key string) (string, bool) {
	if _, ok := a.keys[key]; !ok {
		return "", false
	}
	return a.src.LookupEnv(key)
}
