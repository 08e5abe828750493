/*
 * errors.go, part of adsorb.
 *
 * Copyright 2026 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package adsorb

// Error is the interface for errors that the file-format packages of this
// library implement. The Decorate method allows to add and retrieve info from
// the error, without changing its type or wrapping it around something else.
// If passed an empty string, Decorate should just return the current
// decoration slice, without adding to it. Each element of the slice should be
// a function in the calling stack, possibly followed by extra information, as
// in "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors found while reading one of the input
// files. Critical distinguishes real problems from conditions, like hitting
// the end of a file, that only terminate a read.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
