// Package solverconfig loads and saves a YAML profile of solver tuning
// knobs, so a batch run's choice of cost operator, arc weight, engine and
// connectivity can be replayed without retyping CLI flags. It is
// structured the way the reference mrislicesto3d config package loads
// its own processing/shearlet/output YAML sections: a default-populated
// struct, overwritten in place by whatever the file on disk specifies.
package solverconfig
