package main

import "strings"

// stringSlice is a repeatable flag. The first occurrence on the command line
// drops any values that came from the config file.
type stringSlice struct {
	values []string
	set    bool
}

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.values, ",")
}

func (s *stringSlice) Set(value string) error {
	if !s.set {
		s.values = nil
		s.set = true
	}
	s.values = append(s.values, value)
	return nil
}

func (s *stringSlice) Values() []string {
	return s.values
}
