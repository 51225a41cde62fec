package services_test

import (
	"testing"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = kernel.NewDate(2025, 3, 10)
	tuesday = kernel.NewDate(2025, 3, 11)
)

func line(id, name string, qty int) services.ReportLine {
	return services.ReportLine{ProductID: id, ProductName: name, Quantity: qty}
}

func reportOrder(date kernel.Date, grade int, name string, status order.Status, lines ...services.ReportLine) services.ReportOrder {
	return services.ReportOrder{
		OrderID:      kernel.NewUUID(),
		StudentID:    "id-" + name,
		Student:      &services.ReportStudent{Grade: grade, ClassName: "A", Name: name},
		DeliveryDate: date,
		Status:       status,
		Lines:        lines,
	}
}

// tenLineFixture spans 2 dates, 2 grades and 3 products with 10 order lines.
func tenLineFixture() []services.ReportOrder {
	return []services.ReportOrder{
		reportOrder(tuesday, 2, "Sato", order.Active, line("p3", "Udon", 1), line("p1", "Curry", 1)),
		reportOrder(monday, 2, "Suzuki", order.Active, line("p2", "Salad", 2)),
		reportOrder(monday, 1, "Tanaka", order.Active, line("p1", "Curry", 1), line("p2", "Salad", 1), line("p3", "Udon", 1)),
		reportOrder(tuesday, 1, "Ito", order.Active, line("p1", "Curry", 3)),
		reportOrder(monday, 1, "Kato", order.Active, line("p1", "Curry", 2)),
		reportOrder(tuesday, 1, "Abe", order.Active, line("p3", "Udon", 1), line("p2", "Salad", 1)),
		reportOrder(monday, 1, "Mori", order.Cancelled, line("p1", "Curry", 5)),
	}
}

func TestOrderAggregator_GroupByGradeProductDate(t *testing.T) {
	agg := services.NewOrderAggregator()

	t.Run("should sort by date, grade and product name", func(t *testing.T) {
		groups := agg.GroupByGradeProductDate(tenLineFixture())

		type key struct {
			date    string
			grade   int
			product string
		}
		got := make([]key, 0, len(groups))
		total := 0
		for _, g := range groups {
			got = append(got, key{g.DeliveryDate.String(), g.Grade, g.ProductName})
			total += len(g.Entries)
		}

		assert.Equal(t, []key{
			{"2025-03-10", 1, "Curry"},
			{"2025-03-10", 1, "Salad"},
			{"2025-03-10", 1, "Udon"},
			{"2025-03-10", 2, "Salad"},
			{"2025-03-11", 1, "Curry"},
			{"2025-03-11", 1, "Salad"},
			{"2025-03-11", 1, "Udon"},
			{"2025-03-11", 2, "Curry"},
			{"2025-03-11", 2, "Udon"},
		}, got)
		assert.Equal(t, 10, total)
	})

	t.Run("should keep input order within a group", func(t *testing.T) {
		groups := agg.GroupByGradeProductDate(tenLineFixture())

		require.Equal(t, "Curry", groups[0].ProductName)
		require.Len(t, groups[0].Entries, 2)
		assert.Equal(t, "Tanaka", groups[0].Entries[0].StudentName)
		assert.Equal(t, "Kato", groups[0].Entries[1].StudentName)
		assert.Equal(t, 2, groups[0].Entries[1].Quantity)
	})

	t.Run("should list the other products of the order", func(t *testing.T) {
		groups := agg.GroupByGradeProductDate(tenLineFixture())

		tanakaCurry := groups[0].Entries[0]
		assert.Equal(t, "Salad, Udon", tanakaCurry.OtherOrders)

		tanakaUdon := groups[2].Entries[0]
		assert.Equal(t, "Curry, Salad", tanakaUdon.OtherOrders)

		katoCurry := groups[0].Entries[1]
		assert.Empty(t, katoCurry.OtherOrders)
	})

	t.Run("should copy receipt state and class", func(t *testing.T) {
		row := reportOrder(monday, 3, "Ueda", order.Active, line("p1", "Curry", 1))
		row.IsReceived = true
		row.Student.ClassName = "C"

		groups := agg.GroupByGradeProductDate([]services.ReportOrder{row})

		require.Len(t, groups, 1)
		entry := groups[0].Entries[0]
		assert.True(t, entry.IsReceived)
		assert.Equal(t, "C", entry.StudentClassName)
		assert.Equal(t, monday, entry.DeliveryDate)
		assert.True(t, entry.OrderID.IsEqual(row.OrderID))
	})

	t.Run("should skip orders without a student and report them", func(t *testing.T) {
		orphan := reportOrder(monday, 1, "Ghost", order.Active, line("p1", "Curry", 1))
		orphan.Student = nil

		var skipped []string
		agg := services.NewOrderAggregator(services.WithMissingStudentHandler(func(_ kernel.UUID, studentID string) {
			skipped = append(skipped, studentID)
		}))

		groups := agg.GroupByGradeProductDate([]services.ReportOrder{
			orphan,
			reportOrder(monday, 1, "Kato", order.Active, line("p1", "Curry", 2)),
		})

		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Entries, 1)
		assert.Equal(t, []string{"id-Ghost"}, skipped)
	})

	t.Run("should return nothing for no active orders", func(t *testing.T) {
		assert.Empty(t, agg.GroupByGradeProductDate(nil))
		assert.Empty(t, agg.GroupByGradeProductDate([]services.ReportOrder{
			reportOrder(monday, 1, "Mori", order.Cancelled, line("p1", "Curry", 5)),
		}))
	})
}

func TestOrderAggregator_SummarizeByDeliveryDate(t *testing.T) {
	agg := services.NewOrderAggregator()

	t.Run("should total quantities per product", func(t *testing.T) {
		summaries := agg.SummarizeByDeliveryDate([]services.ReportOrder{
			reportOrder(monday, 1, "Kato", order.Active, line("a", "A", 2), line("b", "B", 3)),
			reportOrder(monday, 2, "Sato", order.Active, line("a", "A", 1)),
		})

		require.Len(t, summaries, 1)
		assert.Equal(t, monday, summaries[0].DeliveryDate)
		assert.Equal(t, []services.ProductQuantity{
			{ProductName: "A", TotalQuantity: 3},
			{ProductName: "B", TotalQuantity: 3},
		}, summaries[0].Products)
	})

	t.Run("should sort dates and product names and ignore cancelled orders", func(t *testing.T) {
		summaries := agg.SummarizeByDeliveryDate(tenLineFixture())

		require.Len(t, summaries, 2)
		assert.Equal(t, monday, summaries[0].DeliveryDate)
		assert.Equal(t, []services.ProductQuantity{
			{ProductName: "Curry", TotalQuantity: 3},
			{ProductName: "Salad", TotalQuantity: 3},
			{ProductName: "Udon", TotalQuantity: 1},
		}, summaries[0].Products)
		assert.Equal(t, tuesday, summaries[1].DeliveryDate)
		assert.Equal(t, []services.ProductQuantity{
			{ProductName: "Curry", TotalQuantity: 4},
			{ProductName: "Salad", TotalQuantity: 1},
			{ProductName: "Udon", TotalQuantity: 2},
		}, summaries[1].Products)
	})

	t.Run("should count orders whose student is missing", func(t *testing.T) {
		orphan := reportOrder(monday, 1, "Ghost", order.Active, line("a", "A", 4))
		orphan.Student = nil

		summaries := agg.SummarizeByDeliveryDate([]services.ReportOrder{orphan})

		require.Len(t, summaries, 1)
		assert.Equal(t, 4, summaries[0].Products[0].TotalQuantity)
	})
}
