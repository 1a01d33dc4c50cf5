package gmsh

// Options address the hundreds of knobs the native library exposes through a
// "Category.Name" namespace: "Mesh.Algorithm", "General.Verbosity",
// "Geometry.Tolerance", and so on. Unknown names fail with ErrUnknownOption.

// SetNumberOption assigns a numeric option. Boolean options take 0 or 1.
func (s *Session) SetNumberOption(name string, value float64) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.OptionSetNumber(name, value))
}

// NumberOption reads back a numeric option.
func (s *Session) NumberOption(name string) (float64, error) {
	done, err := s.begin()
	if err != nil {
		return 0, err
	}
	defer done()
	v, err := s.api.OptionGetNumber(name)
	if err != nil {
		return 0, remapError(err)
	}
	return v, nil
}

// SetStringOption assigns a string option.
func (s *Session) SetStringOption(name, value string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()
	return remapError(s.api.OptionSetString(name, value))
}

// StringOption reads back a string option.
func (s *Session) StringOption(name string) (string, error) {
	done, err := s.begin()
	if err != nil {
		return "", err
	}
	defer done()
	v, err := s.api.OptionGetString(name)
	if err != nil {
		return "", remapError(err)
	}
	return v, nil
}
