package handlers

import (
	"github.com/gofiber/fiber/v2"

	"billsync/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 250
)

type BillDetail struct {
	Bill       *domain.Bill       `json:"bill"`
	Subjects   []domain.Subject   `json:"subjects"`
	Actions    []domain.Action    `json:"actions"`
	Cosponsors []domain.Cosponsor `json:"cosponsors"`
}

func BillsHandler(bills BillReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := billFilter(c)
		if err != nil {
			return err
		}

		list, err := bills.List(c.UserContext(), filter)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading bills")
		}

		return c.JSON(fiber.Map{
			"bills":  list,
			"count":  len(list),
			"limit":  filter.Limit,
			"offset": filter.Offset,
		})
	}
}

func BillDetailHandler(bills BillReader, subjects SubjectReader, actions ActionReader, cosponsors CosponsorReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		congress, err := c.ParamsInt("congress")
		if err != nil || congress <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid congress")
		}

		key := domain.BillKey{
			Congress: congress,
			Type:     c.Params("type"),
			Number:   c.Params("number"),
		}

		bill, err := bills.GetByKey(ctx, key)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading bill")
		}
		if bill == nil {
			return fiber.NewError(fiber.StatusNotFound, "Bill not found")
		}

		detail := BillDetail{Bill: bill}

		if detail.Subjects, err = subjects.ListByBill(ctx, bill.ID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading subjects")
		}
		if detail.Actions, err = actions.ListByBill(ctx, bill.ID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading actions")
		}
		if detail.Cosponsors, err = cosponsors.ListByBill(ctx, bill.ID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading cosponsors")
		}

		return c.JSON(detail)
	}
}

func billFilter(c *fiber.Ctx) (domain.BillFilter, error) {
	filter := domain.BillFilter{
		Congress: c.QueryInt("congress", 0),
		BillType: c.Query("type"),
		Limit:    c.QueryInt("limit", defaultPageSize),
		Offset:   c.QueryInt("offset", 0),
	}

	if filter.Congress < 0 {
		return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid congress")
	}
	if filter.Offset < 0 {
		return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid offset")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	return filter, nil
}
