// Package schedule computes which delivery dates can still be ordered and
// when each one closes.
//
// Business days are Monday to Friday. The deadline for a delivery date is
// 15:00 local time two business days earlier, so an order for Monday closes
// on the preceding Thursday at 15:00:
//
//	calc, _ := schedule.NewCalculator(tokyo)
//	for slot := range calc.Candidates(schedule.DefaultDaysAhead, now) {
//	    fmt.Println(slot.DeliveryDate, slot.Deadline)
//	}
package schedule
