package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON decodes the duration fields of an interface through [Duration].
func (i *Interface) UnmarshalJSON(b []byte) error {
	type plain Interface
	aux := struct {
		*plain
		ReadTimeout  Duration `json:"read_timeout"`
		WriteTimeout Duration `json:"write_timeout"`
	}{plain: (*plain)(i)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	i.ReadTimeout = time.Duration(aux.ReadTimeout)
	i.WriteTimeout = time.Duration(aux.WriteTimeout)
	return nil
}

func (a *Adapter) UnmarshalJSON(b []byte) error {
	type plain Adapter
	aux := struct {
		*plain
		PushTimeout Duration `json:"push_timeout"`
		RetryWait   Duration `json:"retry_wait"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.PushTimeout = time.Duration(aux.PushTimeout)
	a.RetryWait = time.Duration(aux.RetryWait)
	return nil
}

func (w *Workers) UnmarshalJSON(b []byte) error {
	aux := struct {
		DiscoveryInterval Duration `json:"discovery_interval"`
	}{}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	w.DiscoveryInterval = time.Duration(aux.DiscoveryInterval)
	return nil
}
