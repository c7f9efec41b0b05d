package entities

type Summary struct {
	UsersByRole map[Role]int64
	Orders      OrderStats
}
