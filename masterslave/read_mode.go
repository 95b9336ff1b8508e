package masterslave

// ReadMode selects which nodes serve read commands.
type ReadMode string

const (
	// ReadModeSlave routes reads to replicas only.
	ReadModeSlave ReadMode = "slave"
	// ReadModeMaster routes reads to the master only.
	ReadModeMaster ReadMode = "master"
	// ReadModeMasterSlave routes reads to the master and replicas.
	ReadModeMasterSlave ReadMode = "master_slave"
)

// ReadsFromReplicas reports whether replicas may serve reads.
func (m ReadMode) ReadsFromReplicas() bool {
	return m == ReadModeSlave || m == ReadModeMasterSlave
}
