package logs

type schema struct {
	games, playerGames string
}

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id varchar(36) primary key,
  played_at timestamp not null,
  board_rows integer not null,
  board_columns integer not null,
  player1 varchar not null,
  player2 varchar not null,
  result varchar not null,
  winner varchar not null,
  moves integer not null,
  move_list text not null
)`

const playerGamesBody = `(
  id, player, opponent, color, win, result, board_rows, board_columns, moves, played_at
) AS
SELECT id, player2, player1, 'yellow',
       CASE winner WHEN 'red' THEN 'lose' WHEN 'yellow' THEN 'win' ELSE 'tie' END,
       result, board_rows, board_columns, moves, played_at
 FROM games
UNION
SELECT id, player1, player2, 'red',
       CASE winner WHEN 'red' THEN 'win' WHEN 'yellow' THEN 'lose' ELSE 'tie' END,
       result, board_rows, board_columns, moves, played_at
 FROM games
`

var schemas = map[string]schema{
	"sqlite3": {
		games:       createGameTable,
		playerGames: `CREATE VIEW IF NOT EXISTS player_games ` + playerGamesBody,
	},
	"postgres": {
		games:       createGameTable,
		playerGames: `CREATE OR REPLACE VIEW player_games ` + playerGamesBody,
	},
}

const insertStmt = `
INSERT INTO games (id, played_at, board_rows, board_columns, player1, player2, result, winner, moves, move_list)
VALUES (:id, :played_at, :board_rows, :board_columns, :player1, :player2, :result, :winner, :moves, :move_list)
`

const selectPlayerGames = `
SELECT id, player, opponent, color, win, result, board_rows, board_columns, moves
  FROM player_games
 WHERE player = ?
 ORDER BY played_at, id
`
