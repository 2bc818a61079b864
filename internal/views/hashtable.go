package views

import "airline/internal/domain/models"

// HashTableSize is the fixed bucket count of the passenger hash view.
const HashTableSize = 10

// HashTicket is the polynomial string hash h = (h*31 + rune) mod size,
// reduced at every step.
func HashTicket(ticketID string, size int) int {
	h := 0
	for _, r := range ticketID {
		h = (h*31 + int(r)) % size
	}
	return h
}

// BuildHashTable buckets passengers by HashTicket. All size buckets are
// present; colliding passengers keep their input order.
func BuildHashTable(passengers []models.Passenger, size int) map[int][]models.Passenger {
	table := make(map[int][]models.Passenger, size)
	for i := 0; i < size; i++ {
		table[i] = []models.Passenger{}
	}
	for _, p := range passengers {
		idx := HashTicket(p.TicketID, size)
		table[idx] = append(table[idx], p)
	}
	return table
}
