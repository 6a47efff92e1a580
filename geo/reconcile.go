package geo

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/utils"
)

const logPrefix = "geo"

var (
	ErrNameMappingUnavailable = fmt.Errorf("country name mapping file is unavailable")
	ErrInvalidNameMapping     = fmt.Errorf("invalid country name mapping file")
	ErrInvalidISO2Cache       = fmt.Errorf("invalid country iso2 cache file")
)

// LoadNameMapping reads the required case-name to geometry-name mapping.
func LoadNameMapping(file string) (schema.NameMapping, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNameMappingUnavailable, err)
	}

	var mapping schema.NameMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNameMapping, err)
	}
	if mapping == nil {
		mapping = schema.NameMapping{}
	}

	return mapping, nil
}

// BuildISO2Mapping maps each geometry country name to its ISO2 code.
func BuildISO2Mapping(features []schema.Feature) schema.ISO2Mapping {
	mapping := make(schema.ISO2Mapping, len(features))
	for _, f := range features {
		mapping[f.Name] = f.ISO2
	}
	return mapping
}

// WriteISO2Cache persists the mapping. The file is replaced atomically.
func WriteISO2Cache(file string, mapping schema.ISO2Mapping) error {
	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(filepath.Dir(file), filepath.Base(file)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

// LoadOrCreateISO2Cache returns the cached mapping, generating and
// persisting it from features when the file is absent. created reports
// whether the file was written.
func LoadOrCreateISO2Cache(file string, features []schema.Feature) (mapping schema.ISO2Mapping, created bool, err error) {
	data, err := ioutil.ReadFile(file)
	if err == nil {
		if err := json.Unmarshal(data, &mapping); err != nil {
			return nil, false, fmt.Errorf("%w: %s", ErrInvalidISO2Cache, err)
		}
		return mapping, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "file": file}).Info("iso2 cache is unavailable, creating file")

	mapping = BuildISO2Mapping(features)
	if err := WriteISO2Cache(file, mapping); err != nil {
		return nil, false, err
	}

	return mapping, true, nil
}

// Reconciler renames case dataset countries onto geometry dataset names.
type Reconciler struct {
	mapping schema.NameMapping
	names   map[string]struct{}
	keys    map[string]string
}

func NewReconciler(mapping schema.NameMapping, features []schema.Feature) *Reconciler {
	r := &Reconciler{
		mapping: mapping,
		names:   make(map[string]struct{}, len(features)),
		keys:    make(map[string]string, len(features)),
	}

	for _, f := range features {
		r.names[f.Name] = struct{}{}
		if _, ok := r.keys[utils.NameKey(f.Name)]; !ok {
			r.keys[utils.NameKey(f.Name)] = f.Name
		}
	}

	return r
}

// Resolve returns the geometry name of a case dataset name. A name that is
// already a geometry name resolves to itself.
func (r *Reconciler) Resolve(name string) (string, bool) {
	if _, ok := r.names[name]; ok {
		return name, true
	}

	if mapped, ok := r.mapping[name]; ok {
		if _, ok := r.names[mapped]; ok {
			return mapped, true
		}
		if n, ok := r.keys[utils.NameKey(mapped)]; ok {
			return n, true
		}
	}

	n, ok := r.keys[utils.NameKey(name)]
	return n, ok
}

// Apply keeps the observations resolving to a geometry entry, renamed to
// it. The first observation wins when two resolve to the same country.
// Names that do not resolve are returned in dropped.
func (r *Reconciler) Apply(observations []schema.Observation) (resolved []schema.Observation, dropped []string) {
	seen := map[string]struct{}{}
	resolved = make([]schema.Observation, 0, len(observations))

	for _, o := range observations {
		name, ok := r.Resolve(o.Location)
		if !ok {
			dropped = append(dropped, o.Location)
			continue
		}
		if _, dup := seen[name]; dup {
			log.WithFields(log.Fields{"prefix": logPrefix, "location": o.Location, "country": name}).Warn("duplicate country after reconciliation")
			dropped = append(dropped, o.Location)
			continue
		}
		seen[name] = struct{}{}

		o.Location = name
		resolved = append(resolved, o)
	}

	if len(dropped) > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "locations": dropped}).Debug("unmapped locations excluded")
	}

	return resolved, dropped
}
