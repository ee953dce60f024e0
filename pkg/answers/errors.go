/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package answers

const errFieldNotFoundWrap = "%s-kind field «%s» is not found in scheme «%s»: %w" // integer-kind field «age» is not found …

const errFieldKindMismatchWrap = "%s-kind value is requested from %v: %w" // integer-kind value is requested from string-field «note» …
