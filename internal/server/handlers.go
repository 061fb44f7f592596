package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"sportsreader/internal/domain"
	"sportsreader/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msg})
}

func (s *Server) upstreamError(c *fiber.Ctx, err error, msg string) error {
	s.logger.Error(msg, "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: msg})
}

// parseSelector reads the focus parameters from the query string. Anything
// malformed falls back to the combined view rather than erroring.
func parseSelector(c *fiber.Ctx) domain.Selector {
	var sel domain.Selector

	if raw := c.Query("focus"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			sel.InterestID = &id
			return sel
		}
		return domain.Selector{}
	}

	t := c.Query("type")
	if t == "" || !domain.ValidEntityType(t) {
		return domain.Selector{}
	}

	rawID := c.Query("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return domain.Selector{}
	}
	sel.EntityType = domain.EntityType(t)
	sel.EntityID = &id

	if raw := c.Query("leagueId"); raw != "" {
		if leagueID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			sel.LeagueID = &leagueID
		}
	}
	return sel
}

func (s *Server) handleFeed(c *fiber.Ctx) error {
	subscriber := c.Query("subscriber")
	if subscriber == "" {
		return badRequest(c, "subscriber is required")
	}

	sel := parseSelector(c)
	limit := c.QueryInt("limit")

	page, err := s.feed.GetFeed(c.UserContext(), subscriber, sel, c.Query("cursor"), limit)
	if err != nil {
		return s.upstreamError(c, err, "feed query failed")
	}
	return c.JSON(page)
}

type interestBody struct {
	Subscriber string `json:"subscriber"`
	Type       string `json:"type"`
	ID         *int64 `json:"id"`
	LeagueID   *int64 `json:"leagueId"`
	SportID    *int64 `json:"sportId"`
	CountryID  *int64 `json:"countryId"`
}

type interestResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	EntityID  *int64    `json:"entityId,omitempty"`
	LeagueID  *int64    `json:"leagueId,omitempty"`
	SportID   *int64    `json:"sportId,omitempty"`
	CountryID *int64    `json:"countryId,omitempty"`
	Focused   bool      `json:"focused"`
	CreatedAt time.Time `json:"createdAt"`
}

func toInterestResponse(in domain.Interest) interestResponse {
	resp := interestResponse{
		ID:        in.ID,
		Type:      string(in.Target.EntityType()),
		Focused:   in.Focused,
		CreatedAt: in.CreatedAt,
	}
	if o, ok := in.Target.(domain.OlympicsTarget); ok {
		resp.SportID = o.SportID
		resp.CountryID = o.CountryID
		return resp
	}
	id := domain.PrimaryID(in.Target)
	resp.EntityID = &id
	resp.LeagueID = domain.ScopeLeagueID(in.Target)
	return resp
}

// targetFromBody maps a request body onto a concrete target. Validation of
// the ids themselves happens in the interest service.
func targetFromBody(body interestBody) (domain.Target, error) {
	entityID := func() int64 {
		if body.ID == nil {
			return 0
		}
		return *body.ID
	}

	switch domain.EntityType(body.Type) {
	case domain.EntitySport:
		return domain.SportTarget{SportID: entityID()}, nil
	case domain.EntityLeague:
		return domain.LeagueTarget{LeagueID: entityID()}, nil
	case domain.EntityTeam:
		return domain.TeamTarget{TeamID: entityID()}, nil
	case domain.EntityPerson:
		return domain.PersonTarget{PersonID: entityID()}, nil
	case domain.EntitySchool:
		return domain.SchoolTarget{SchoolID: entityID(), LeagueID: body.LeagueID}, nil
	case domain.EntityCountry:
		return domain.CountryTarget{CountryID: entityID(), LeagueID: body.LeagueID}, nil
	case domain.EntityOlympics:
		return domain.OlympicsTarget{SportID: body.SportID, CountryID: body.CountryID}, nil
	}
	return nil, errors.New("unknown interest type " + strconv.Quote(body.Type))
}

func (s *Server) handleListInterests(c *fiber.Ctx) error {
	subscriber := c.Query("subscriber")
	if subscriber == "" {
		return badRequest(c, "subscriber is required")
	}

	interests, err := s.interests.List(c.UserContext(), subscriber)
	if err != nil {
		return s.upstreamError(c, err, "listing interests failed")
	}

	resp := make([]interestResponse, 0, len(interests))
	for _, in := range interests {
		resp = append(resp, toInterestResponse(in))
	}
	return c.JSON(resp)
}

func (s *Server) handleCreateInterest(c *fiber.Ctx) error {
	var body interestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Subscriber == "" {
		return badRequest(c, "subscriber is required")
	}

	target, err := targetFromBody(body)
	if err != nil {
		return badRequest(c, err.Error())
	}

	interest, err := s.interests.Follow(c.UserContext(), body.Subscriber, target)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			return badRequest(c, err.Error())
		}
		return s.upstreamError(c, err, "creating interest failed")
	}
	return c.Status(fiber.StatusCreated).JSON(toInterestResponse(*interest))
}

func (s *Server) handleDeleteInterest(c *fiber.Ctx) error {
	subscriber := c.Query("subscriber")
	if subscriber == "" {
		return badRequest(c, "subscriber is required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid interest id")
	}

	if err := s.interests.Unfollow(c.UserContext(), subscriber, id); err != nil {
		return s.upstreamError(c, err, "removing interest failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleToggleFocus(c *fiber.Ctx) error {
	subscriber := c.Query("subscriber")
	if subscriber == "" {
		return badRequest(c, "subscriber is required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid interest id")
	}

	focused, err := s.interests.ToggleFocus(c.UserContext(), subscriber, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "interest not found"})
		}
		return s.upstreamError(c, err, "toggling focus failed")
	}
	return c.JSON(fiber.Map{"focused": focused})
}

func (s *Server) handleResolve(c *fiber.Ctx) error {
	subscriber := c.Query("subscriber")
	if subscriber == "" {
		return badRequest(c, "subscriber is required")
	}

	desc := s.resolver.Resolve(c.UserContext(), subscriber, parseSelector(c))
	return c.JSON(desc)
}

type aggregateBody struct {
	Topics []string `json:"topics"`
}

type articlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

func (s *Server) handleAggregate(c *fiber.Ctx) error {
	var body aggregateBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Topics) == 0 {
		return badRequest(c, "topics are required")
	}

	articles, err := s.refresh.AggregateTopics(c.UserContext(), body.Topics)
	if err != nil {
		return s.upstreamError(c, err, "aggregation failed")
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return c.JSON(articlesResponse{Articles: articles})
}

func (s *Server) handleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "q is required")
	}

	articles, err := s.refresh.SearchCached(c.UserContext(), query)
	if err != nil {
		return s.upstreamError(c, err, "search failed")
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return c.JSON(articlesResponse{Articles: articles})
}
