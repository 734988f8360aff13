package types

import "fmt"

// AddedOnLayout is how broker timestamps are written in the registry file.
const AddedOnLayout = "2006-01-02 15:04:05"

// BrokerRecord is one saved broker contact. Records never change after
// creation; deleting and re-adding is the only edit.
type BrokerRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	AddedOn string `json:"added_on"`
}

// DisplayLine renders the record for list output. pos is the 1-based
// position shown to the user; the id is shortened to its first 8 characters
// to keep lines scannable.
func (b BrokerRecord) DisplayLine(pos int) string {
	id := b.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("[%d] %s - %s (ID: %s)", pos, b.Name, b.Contact, id)
}
