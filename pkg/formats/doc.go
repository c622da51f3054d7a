// Package formats assembles every validator from one Settings value.
//
// Settings is loaded from the environment (Load) or from a YAML file with
// an environment overlay (LoadFile). Build checks the settings once and
// returns a Kit, which is read-only and safe for concurrent use:
//
//	s, err := formats.LoadFile("validators.yaml")
//	if err != nil {
//	    return err
//	}
//	kit, err := s.Build(s.Logger())
//	if err != nil {
//	    return err
//	}
//	if err := kit.Check("mac", input); err != nil {
//	    // reject
//	}
//
// Environment variables use the section prefix followed by the field name,
// for example MAC_CASE, MAC_SEPARATOR, MAC_DELIMITER, UUID_SEPARATOR,
// HOST_LOCAL, HOST_PORT, HOST_AT_LEAST_TWO_LABELS, NUMBER_NEGATIVE,
// NUMBER_ZERO, PHONE_COUNTRIES and LOG_LEVEL.
package formats
