package sched

const mailboxSlots = 64

// mailbox is a fixed ring of pending callbacks.
type mailbox struct {
	head  uint32
	tail  uint32
	slots [mailboxSlots]func()
}

func (mb *mailbox) push(fn func()) bool {
	if mb.head-mb.tail >= mailboxSlots {
		return false
	}
	mb.slots[mb.head%mailboxSlots] = fn
	mb.head++
	return true
}

func (mb *mailbox) pop() (func(), bool) {
	if mb.tail == mb.head {
		return nil, false
	}
	i := mb.tail % mailboxSlots
	fn := mb.slots[i]
	mb.slots[i] = nil
	mb.tail++
	return fn, true
}

func (mb *mailbox) len() int { return int(mb.head - mb.tail) }
