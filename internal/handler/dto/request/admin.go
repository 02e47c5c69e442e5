package request

import (
	"time"

	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

const releaseDateLayout = "2006-01-02"

type AddMovieRequest struct {
	Name            string   `json:"name" binding:"required,max=200"`
	Plot            string   `json:"plot" binding:"max=2000"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=1"`
	ReleaseDate     string   `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
	Genres          []string `json:"genres" binding:"dive,required"`
	Directors       []string `json:"directors" binding:"dive,required"`
}

func (r *AddMovieRequest) ToCommand() commands.AddMovieRequest {
	var released time.Time
	if r.ReleaseDate != "" {
		// Already checked by the datetime rule.
		released, _ = time.Parse(releaseDateLayout, r.ReleaseDate)
	}
	return commands.AddMovieRequest{
		Name:            r.Name,
		Plot:            r.Plot,
		DurationMinutes: r.DurationMinutes,
		ReleaseDate:     released,
		Genres:          r.Genres,
		Directors:       r.Directors,
	}
}

type AddActorRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Surname       string `json:"surname" binding:"required,max=100"`
	CharacterName string `json:"character_name" binding:"required,max=200"`
}

func (r *AddActorRequest) ToCommand(movieID uuid.UUID) commands.AddActorRequest {
	return commands.AddActorRequest{
		MovieID:       movieID,
		Name:          r.Name,
		Surname:       r.Surname,
		CharacterName: r.CharacterName,
	}
}

type AddTheaterRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	SeatNumbers []int  `json:"seat_numbers" binding:"required_without=SeatCount,omitempty,seatnumbers"`
	SeatCount   int    `json:"seat_count" binding:"required_without=SeatNumbers,omitempty,min=1,max=2000"`
}

func (r *AddTheaterRequest) ToCommand() commands.AddTheaterRequest {
	return commands.AddTheaterRequest{
		Name:        r.Name,
		SeatNumbers: r.SeatNumbers,
		SeatCount:   r.SeatCount,
	}
}

type ScheduleShowRequest struct {
	MovieID      uuid.UUID `json:"movie_id" binding:"required"`
	TheaterID    uuid.UUID `json:"theater_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	UnitPrice    string    `json:"unit_price" binding:"required"`
	PointsToEarn *int      `json:"points_to_earn" binding:"omitempty,min=0"`
}

func (r *ScheduleShowRequest) ToCommand() commands.ScheduleShowRequest {
	return commands.ScheduleShowRequest{
		MovieID:      r.MovieID,
		TheaterID:    r.TheaterID,
		StartTime:    r.StartTime,
		UnitPrice:    r.UnitPrice,
		PointsToEarn: r.PointsToEarn,
	}
}
