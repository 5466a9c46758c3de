package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenic-tour/internal/domain"
)

func sampleRoute(polyline string) domain.Route {
	return domain.Route{
		Distance: domain.Distance{Text: "12.3 km", Meters: 12300},
		Duration: domain.Duration{Text: "25 mins", Seconds: 1500},
		Steps: []domain.Step{
			{Instruction: "Head <b>north</b>", Distance: domain.Distance{Text: "2.0 km"}, Duration: domain.Duration{Text: "4 mins"}},
			{Instruction: "Arrive", Distance: domain.Distance{Text: "10.3 km"}, Duration: domain.Duration{Text: "21 mins"}},
		},
		Polyline: polyline,
	}
}

func TestAssembleTour(t *testing.T) {
	t.Run("fastest only", func(t *testing.T) {
		resp, err := AssembleTour(&domain.Tour{Fastest: sampleRoute("abc")})
		require.NoError(t, err)
		assert.Nil(t, resp.ScenicRoute)
		require.Len(t, resp.FastestRoute.Steps, 2)
		assert.Equal(t, "Head <b>north</b>", resp.FastestRoute.Steps[0].Instruction)
		assert.Equal(t, "4 mins", resp.FastestRoute.Steps[0].Duration)

		body, err := json.Marshal(resp)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.Contains(t, raw, "fastest_route")
		assert.NotContains(t, raw, "scenic_route")
		assert.NotContains(t, string(raw["fastest_route"]), "scenic_points")
	})

	t.Run("with scenic route", func(t *testing.T) {
		rating := 4.6
		reviews := 1200
		scenic := sampleRoute("def")
		scenic.ScenicPoints = []domain.Candidate{
			{
				PlaceID:          "p1",
				Name:             "Harbour",
				Location:         domain.Coordinate{Lat: 41.3851, Lng: 2.1734},
				Category:         domain.CategoryCoastal,
				Weight:           2.1,
				Rating:           &rating,
				UserRatingsTotal: &reviews,
				Website:          "https://example.org",
			},
			{PlaceID: "p2", Name: "Viewpoint", Location: domain.Coordinate{Lat: 41.4, Lng: 2.2}, Category: domain.CategoryNature, Weight: 1.3},
		}

		resp, err := AssembleTour(&domain.Tour{Fastest: sampleRoute("abc"), Scenic: &scenic})
		require.NoError(t, err)
		require.NotNil(t, resp.ScenicRoute)
		require.Len(t, resp.ScenicRoute.ScenicPoints, 2)

		first := resp.ScenicRoute.ScenicPoints[0]
		assert.Equal(t, "41.3851,2.1734", first.Location)
		assert.Equal(t, "coastal", first.Type)
		assert.Equal(t, 4.6, *first.Rating)

		body, err := json.Marshal(resp.ScenicRoute.ScenicPoints[1])
		require.NoError(t, err)
		assert.JSONEq(t, `{"location":"41.4,2.2","type":"nature","name":"Viewpoint","weight":1.3,"place_id":"p2"}`, string(body))
	})

	t.Run("incomplete fastest route is an error", func(t *testing.T) {
		route := sampleRoute("")
		_, err := AssembleTour(&domain.Tour{Fastest: route})
		assert.ErrorIs(t, err, ErrIncompleteRoute)

		route = sampleRoute("abc")
		route.Steps = nil
		_, err = AssembleTour(&domain.Tour{Fastest: route})
		assert.ErrorIs(t, err, ErrIncompleteRoute)
	})

	t.Run("incomplete scenic route is dropped", func(t *testing.T) {
		scenic := sampleRoute("def")
		scenic.Duration.Text = ""
		scenic.ScenicPoints = []domain.Candidate{{PlaceID: "p1"}}

		resp, err := AssembleTour(&domain.Tour{Fastest: sampleRoute("abc"), Scenic: &scenic})
		require.NoError(t, err)
		assert.Nil(t, resp.ScenicRoute)
	})
}

func TestTourRequest_ToDomain(t *testing.T) {
	tolerance := 15
	req := TourRequest{
		Origin:       "  Barcelona ",
		Destination:  "41.98,2.82",
		Waypoints:    []string{" Mataró", "Blanes"},
		Scenic:       true,
		ETATolerance: &tolerance,
	}
	req.Normalize()
	tour := req.ToDomain()

	assert.Equal(t, "Barcelona", tour.Origin.String())
	assert.True(t, tour.Destination.IsResolved())
	assert.Equal(t, domain.TravelModeDriving, tour.Mode)
	assert.Equal(t, 15, tour.ETATolerance)
	require.Len(t, tour.Stops, 2)
	assert.Equal(t, "Mataró", tour.Stops[0].Location.String())
	assert.NotEqual(t, tour.Stops[0].ID, tour.Stops[1].ID)

	req.ETATolerance = nil
	assert.Equal(t, domain.DefaultETATolerance, req.ToDomain().ETATolerance)
}
