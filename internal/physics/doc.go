// Package physics implements a small rigid-body dynamics engine.
//
// A DiscreteDynamicsWorld is assembled from four collaborating parts:
// a Broadphase that culls body pairs by bounding box, a
// CollisionConfiguration holding contact tolerances, a Dispatcher that
// runs the narrowphase for each candidate pair, and a
// SequentialImpulseSolver that resolves contacts. The world owns all of
// them, together with every shape, motion state and body created through
// it, and releases everything in reverse construction order on Close.
package physics
