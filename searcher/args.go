package searcher

// Hyperparameters for the selectors

const FlatSamplesPerMove = 1000 // Flat Monte-Carlo samples per root move
const UCBSamplesPerMove = 300   // UCB1 iterations per root move

const Exploration = 1.41 // UCB1 exploration constant, about sqrt(2)

// Rollouts longer than this are abandoned and scored as a loss
const MaxCutoff = 1000
