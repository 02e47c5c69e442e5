package movie

import (
	"strings"

	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrInvalidActorName     = errs.New("actor name and surname are required")
	ErrInvalidCharacterName = errs.New("character name is required")
)

// Actor is a cast entry: who plays and which character.
type Actor struct {
	name          string
	surname       string
	characterName string
}

func NewActor(name, surname, characterName string) (Actor, error) {
	name, surname = strings.TrimSpace(name), strings.TrimSpace(surname)
	if name == "" || surname == "" {
		return Actor{}, ErrInvalidActorName
	}
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return Actor{}, ErrInvalidCharacterName
	}
	return Actor{name: name, surname: surname, characterName: characterName}, nil
}

func ReconstructActor(name, surname, characterName string) Actor {
	return Actor{name: name, surname: surname, characterName: characterName}
}

func (a Actor) Name() string          { return a.name }
func (a Actor) Surname() string       { return a.surname }
func (a Actor) CharacterName() string { return a.characterName }
func (a Actor) FullName() string      { return a.name + " " + a.surname }
