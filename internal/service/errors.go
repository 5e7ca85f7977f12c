package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

// 对外错误文案统一为阿拉伯语（站点语言），映射见 ErrorMap
var (
	ErrParamInvalid        = errors.New("معاملات غير صالحة")
	ErrPagingInvalid       = errors.New("معاملات التصفح غير صالحة")
	ErrFieldsRequired      = errors.New("جميع الحقول مطلوبة")
	ErrEmailInvalid        = errors.New("البريد الإلكتروني غير صالح")
	ErrContentTooShort     = errors.New("التعليق يجب أن يكون على الأقل 5 أحرف")
	ErrContentTooLong      = errors.New("التعليق يجب ألا يتجاوز 1000 حرف")
	ErrCommentNotFound     = errors.New("التعليق غير موجود")
	ErrParentNotFound      = errors.New("التعليق الأصلي غير موجود")
	ErrParentNotRoot       = errors.New("لا يمكن الرد على رد")
	ErrCommentStatus       = errors.New("حالة التعليق غير صالحة")
	ErrRateLimited         = errors.New("لقد تجاوزت الحد المسموح به من الطلبات. حاول مرة أخرى بعد دقيقة.")
	ErrEmailRateLimited    = errors.New("يمكنك إرسال 3 تعليقات فقط في الساعة")
	ErrPostNotFound        = errors.New("المقال غير موجود")
	ErrSlugExist           = errors.New("الرابط المختصر مستخدم من قبل")
	ErrCaseNotFound        = errors.New("القضية غير موجودة")
	ErrCaseTypeInvalid     = errors.New("نوع القضية غير صالح")
	ErrCaseStatusInvalid   = errors.New("حالة القضية غير صالحة")
	ErrTeamMemberNotFound  = errors.New("عضو الفريق غير موجود")
	ErrMessageNotFound     = errors.New("الرسالة غير موجودة")
	ErrUserNotFound        = errors.New("المستخدم غير موجود")
	ErrUserExist           = errors.New("المستخدم موجود بالفعل")
	ErrPasswordIncorrect   = errors.New("كلمة المرور غير صحيحة")
	ErrMissingCredentials  = errors.New("اسم المستخدم/البريد الإلكتروني وكلمة المرور مطلوبة")
	ErrFileNotSupported    = errors.New("نوع الملف غير مدعوم")
	UnauthorizedError      = errors.New("غير مصرح لك بالوصول")
	UnExpectedError        = errors.New("حدث خطأ غير متوقع، حاول مرة أخرى لاحقاً")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrPagingInvalid:      BadRequest,
	ErrFieldsRequired:     BadRequest,
	ErrEmailInvalid:       BadRequest,
	ErrContentTooShort:    BadRequest,
	ErrContentTooLong:     BadRequest,
	ErrCommentNotFound:    NotFound,
	ErrParentNotFound:     BadRequest,
	ErrParentNotRoot:      BadRequest,
	ErrCommentStatus:      BadRequest,
	ErrRateLimited:        TooManyRequests,
	ErrEmailRateLimited:   TooManyRequests,
	ErrPostNotFound:       NotFound,
	ErrSlugExist:          BadRequest,
	ErrCaseNotFound:       NotFound,
	ErrCaseTypeInvalid:    BadRequest,
	ErrCaseStatusInvalid:  BadRequest,
	ErrTeamMemberNotFound: NotFound,
	ErrMessageNotFound:    NotFound,
	ErrUserNotFound:       NotFound,
	ErrUserExist:          BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrMissingCredentials: BadRequest,
	ErrFileNotSupported:   BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
