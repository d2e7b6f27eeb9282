package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/BruksfildServices01/remonte/internal/models"
)

const (
	ContentType = "text/csv; charset=utf-8"

	NoDescription = "Описание отсутствует"
	NoEmail       = "email не указан"
)

var (
	masterHeader = []string{"id", "full_name", "description", "speciality", "rating"}
	clientHeader = []string{"id", "full_name", "email", "created_at"}
)

func Masters(w io.Writer, masters []models.Master) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(masterHeader); err != nil {
		return err
	}

	for _, m := range masters {
		description := m.Description
		if description == "" {
			description = NoDescription
		}

		if err := cw.Write([]string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.FullName,
			description,
			strconv.FormatUint(uint64(m.SpecialityID), 10),
			strconv.FormatFloat(m.Rating, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func Clients(w io.Writer, clients []models.Client) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(clientHeader); err != nil {
		return err
	}

	for _, c := range clients {
		email := c.Email
		if email == "" {
			email = NoEmail
		}

		if err := cw.Write([]string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.FullName,
			email,
			c.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
