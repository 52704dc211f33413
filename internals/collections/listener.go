// 📁 internals/collections/listener.go
package collections

import (
	"log"
	"time"

	"github.com/lib/pq"
)

const changeChannel = "collection_changed"

// StartChangeListener opens a dedicated lib/pq LISTEN connection on the
// collection_changed channel. The notification payload is the collection
// name; the matching store re-reads its snapshot and redelivers, so writes
// made by another instance (or straight SQL) still reach every dashboard.
//
// Triggers that NOTIFY on insert/update/delete live in the deployment's
// migration SQL, not here.
func StartChangeListener(reg *Registry, dsn string) {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("[ERROR] change listener: %v", err)
			}
		})

	if err := listener.Listen(changeChannel); err != nil {
		log.Printf("[ERROR] change listener: LISTEN %s: %v", changeChannel, err)
		return
	}
	log.Printf("[INFO] change listener on %q", changeChannel)

	go func() {
		for n := range listener.Notify {
			if n == nil {
				// reconnect happened; recheck every collection
				for _, name := range reg.Names() {
					if c, ok := reg.Lookup(name); ok {
						c.Refresh()
					}
				}
				continue
			}
			if c, ok := reg.Lookup(n.Extra); ok {
				c.Refresh()
			} else {
				log.Printf("[WARNING] change listener: unknown collection %q", n.Extra)
			}
		}
	}()
}
