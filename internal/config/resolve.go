package config

// Resolve selects the profile called name, or the default profile when name
// is empty. Matching is exact and case-sensitive, there is no fallback.
func (c *Config) Resolve(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	prof, ok := c.Profile[name]
	if !ok {
		return Profile{}, &ProfileNotFoundError{Name: name, Known: c.Profiles()}
	}
	prof.Name = name
	return prof, nil
}
