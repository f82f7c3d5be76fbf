package engine

// memoryBonds is the Bonds used when no persistent store is wired.
type memoryBonds struct {
	labels map[string]string
}

func newMemoryBonds() *memoryBonds {
	return &memoryBonds{labels: make(map[string]string)}
}

func (m *memoryBonds) Save(identity, label string) error {
	m.labels[identity] = label
	return nil
}

func (m *memoryBonds) Lookup(identity string) (string, bool, error) {
	label, ok := m.labels[identity]
	return label, ok, nil
}
