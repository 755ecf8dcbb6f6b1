package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
)

// LineReader is the input side of a session. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

const (
	ModeHuman  = "1"
	ModeRandom = "2"
	ModeAI     = "3"
	ModeEasy   = "4"
)

var modeDifficulty = map[string]string{
	ModeRandom: bot.DifficultyRandom,
	ModeAI:     bot.DifficultyMinimax,
	ModeEasy:   bot.DifficultyEasy,
}

var (
	ErrQuit    = errors.New("player quit")
	errRestart = errors.New("restart requested")
)

var thinkingMessages = []string{
	"Looking for the strongest column...",
	"Counting lines on the board...",
	"Checking what you are setting up...",
	"Weighing the centre against the edges...",
	"Reading a few moves ahead...",
	"Hunting for a four...",
	"Making sure you cannot win next turn...",
}

type seat struct {
	name   string
	token  domain.Token
	player bot.Player // nil for a human
	ai     bool
}

// Session runs games between humans and bots until the player quits.
type Session struct {
	in  LineReader
	out io.Writer
	cfg *config.Config
	rng bot.Intner
}

// NewSession wires a session. rng drives the random bot, the easy fallback and
// the AI chatter; nil means a crypto-seeded source.
func NewSession(in LineReader, out io.Writer, cfg *config.Config, rng bot.Intner) *Session {
	return &Session{in: in, out: out, cfg: cfg, rng: rng}
}

// Run plays games until the player quits or input ends.
func (s *Session) Run() error {
	for {
		err := s.playOnce()
		switch {
		case errors.Is(err, errRestart):
			s.println("Restarting the game...")
			continue
		case errors.Is(err, ErrQuit):
			s.println("Thanks for playing! Goodbye!")
			return nil
		case err != nil:
			return err
		}

		again, err := s.ask("Do you want to play again? (y/n) | [Q]uit | : ")
		if errors.Is(err, errRestart) {
			continue
		}
		if errors.Is(err, ErrQuit) || (err == nil && !strings.EqualFold(again, "y")) {
			s.println("Thanks for playing! Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) playOnce() error {
	mode, err := s.chooseMode()
	if err != nil {
		return err
	}
	first, second, err := s.setupSeats(mode)
	if err != nil {
		return err
	}

	game, err := domain.NewGame(s.cfg.Rows, s.cfg.Columns, first.token, second.token)
	if err != nil {
		return err
	}
	seats := map[domain.Token]*seat{first.token: first, second.token: second}

	RenderBoard(s.out, game.Board)
	for !game.IsFinished() {
		current := seats[game.CurrentPlayer]
		col, err := s.nextColumn(game, current)
		if err != nil {
			return err
		}

		if _, err := game.MakeMove(col); err != nil {
			// only reachable if a player ignored the legal move list
			s.printf("%s cannot play column %d: %v\n", current.name, col+1, err)
			continue
		}
		log.Debug().Str("player", current.name).Str("token", current.token.String()).
			Int("column", col).Int("moves", game.Board.MoveCount()).Msg("move-committed")

		s.printf("%s dropped a token in column %d\n", current.name, col+1)
		RenderBoard(s.out, game.Board)
	}

	s.announce(game, first, second, mode)
	return nil
}

func (s *Session) chooseMode() (string, error) {
	pattern := "+" + strings.Repeat("-", 28) + "+"
	s.println(pattern)
	s.println("| Welcome to Connect Four!   |")
	s.println(pattern)
	s.println("| Please select a game mode: |")
	s.println("| 1: Human opponent          |")
	s.println("| 2: Random opponent         |")
	s.println("| 3: AI opponent             |")
	s.println("| 4: Easy opponent           |")
	s.println(pattern)

	for {
		mode, err := s.ask("Enter your choice (1, 2, 3, or 4) | [R]estart | [Q]uit | : ")
		if err != nil {
			return "", err
		}
		if _, ok := modeDifficulty[mode]; ok || mode == ModeHuman {
			return mode, nil
		}
		s.println("Invalid input. Please enter 1, 2, 3, or 4.")
	}
}

func (s *Session) setupSeats(mode string) (*seat, *seat, error) {
	name, err := s.askName("Enter your username: ", "")
	if err != nil {
		return nil, nil, err
	}
	token, err := s.askToken(name, domain.Empty)
	if err != nil {
		return nil, nil, err
	}
	first := &seat{name: name, token: token}

	if mode == ModeHuman {
		name, err := s.askName("Enter Player B's username: ", first.name)
		if err != nil {
			return nil, nil, err
		}
		token, err := s.askToken(name, first.token)
		if err != nil {
			return nil, nil, err
		}
		return first, &seat{name: name, token: token}, nil
	}

	difficulty := modeDifficulty[mode]
	opts := s.cfg.PlayerOptions()
	opts.Rand = s.rng
	player, err := bot.NewPlayer(difficulty, opts)
	if err != nil {
		return nil, nil, err
	}

	botToken := domain.PlayerX
	if first.token == domain.PlayerX {
		botToken = domain.PlayerO
	}
	return first, &seat{
		name:   bot.BotName(difficulty),
		token:  botToken,
		player: player,
		ai:     mode == ModeAI,
	}, nil
}

func (s *Session) askName(prompt, taken string) (string, error) {
	for {
		name, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		switch {
		case name == "":
			s.println("Please enter a username.")
		case taken != "" && name == taken:
			s.println("Choose a different username, Player B cannot have the same name as Player A")
		default:
			return name, nil
		}
	}
}

func (s *Session) askToken(name string, taken domain.Token) (domain.Token, error) {
	prompt := fmt.Sprintf("%s: Choose a symbol to represent your token, e.g X or O | [R]estart | [Q]uit | : ", name)
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return domain.Empty, err
		}
		r, size := utf8.DecodeRuneInString(answer)
		token := domain.Token(r)
		switch {
		case size == 0 || size != len(answer):
			s.println("Please enter only one character.")
		case !token.Valid():
			s.println("That symbol cannot be used as a token.")
		case token == taken:
			s.printf("%s is already taken, please choose another symbol.\n", token)
		default:
			s.printf("You chose %s\n", token)
			return token, nil
		}
	}
}

func (s *Session) nextColumn(game *domain.Game, current *seat) (int, error) {
	if current.player != nil {
		if current.ai {
			s.printf("%s: %s\n", current.name, thinkingMessages[s.intn(len(thinkingMessages))])
		}
		return current.player.ChooseMove(game.Board, current.token, game.Opponent(current.token))
	}

	cols := game.Board.Cols()
	prompt := fmt.Sprintf("%s: Enter a column from 1 - %d to drop your token | [R]estart | [Q]uit | : ", current.name, cols)
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 || n > cols {
			s.printf("Please enter a valid number between 1 and %d.\n", cols)
			continue
		}
		if !lo.Contains(game.Board.PossibleMoves(), n-1) {
			s.println("Selected column is full. Please choose another column.")
			continue
		}
		return n - 1, nil
	}
}

func (s *Session) announce(game *domain.Game, first, second *seat, mode string) {
	switch {
	case game.Status == domain.StatusDraw:
		s.println("The game is a draw.")
	case mode == ModeHuman:
		winner := first
		if game.Winner == second.token {
			winner = second
		}
		s.printf("Player %s wins.\n", winner.name)
	case game.Winner == first.token:
		s.println("You won! Congratulations!")
	default:
		s.printf("Unfortunately, %s won.\n", second.name)
	}
}

// ask reads one trimmed line. R and Q are handled here at every prompt.
func (s *Session) ask(prompt string) (string, error) {
	for {
		answer, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		switch strings.ToUpper(answer) {
		case "R":
			if ok, err := s.confirm("Are you sure you want to restart the game? (yes/no): "); err != nil {
				return "", err
			} else if ok {
				return "", errRestart
			}
			s.println("Resuming game...")
		case "Q":
			if ok, err := s.confirm("Are you sure you want to quit? (yes/no): "); err != nil {
				return "", err
			} else if ok {
				return "", ErrQuit
			}
			s.println("Resuming game...")
		default:
			return answer, nil
		}
	}
}

func (s *Session) confirm(prompt string) (bool, error) {
	answer, err := s.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (s *Session) readLine(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	line, err := s.in.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrQuit
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) intn(n int) int {
	if s.rng == nil {
		return frand.Intn(n)
	}
	return s.rng.Intn(n)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
